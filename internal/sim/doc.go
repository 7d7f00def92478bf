// Package sim orchestrates the simulation: the repeating cycle
// {snapshot -> evaluate accelerations -> integrate} and the fixed-timestep
// clock that decouples it from the host's frame rate.
//
// A [Simulator] owns its world exclusively. [Simulator.Step] runs exactly
// one fixed-dt cycle; [Simulator.Advance] is the tick-driver boundary for
// interactive hosts, consuming real elapsed time in whole dt increments
// and carrying the remainder; [Simulator.Run] drives offline runs for a
// fixed duration under a context.
//
// Steps are single-threaded and run to completion: the evaluator's read
// pass finishes before the integrator's write pass begins, and observers
// see the world only after a step completes.
package sim
