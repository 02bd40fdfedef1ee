// Package harness runs check files against the radial operations.
//
// A check file lists operation calls together with the result each call
// must produce. The harness evaluates every call through a calc.Registry,
// records a trace and reports each mismatch.
//
// # Check Format
//
// Checks are defined in YAML files with the following structure:
//
//	name: check_name
//	description: "What this check validates"
//	tolerance: 1e-9          # optional absolute tolerance
//	run_token: fixed-token   # optional, for reproducible output
//	calls:
//	  - call: percent
//	    args: [50, 200]
//	    expect: 25
//	  - call: cartesXY
//	    args: [1, 90, 0, 0]
//	    expect: [0, 1]
//	  - call: round
//	    args: [5, 0]
//	    expect: NaN
//	  - call: between
//	    args: [5, 10, 0]
//	    error: INVALID_INTERVAL
//	  - call: randomInt
//	    args: [1, 10]
//	    within: [1, 10]
//
// Each call carries exactly one of:
//
//   - expect: a number, a [x, y] coordinate, a bool, or one of the strings
//     "NaN", "+Inf", "-Inf"
//   - error: the error code the call must fail with (INVALID_INTERVAL,
//     UNKNOWN_OP, ARITY)
//   - within: an inclusive [min, max] range the numeric result must fall in
//
// Arguments are YAML numbers; use .nan, .inf and -.inf for non-finite ones.
//
// # Deterministic Output
//
// Every run gets a run token, a UUIDv7 by default. Golden snapshots leave
// the token out and encode the trace with ir.MarshalCanonical, so the same
// check always produces byte-identical snapshots as long as it avoids
// randomInt or runs with a seeded registry.
//
// # Usage
//
//	check, err := harness.LoadCheck("testdata/checks/percent.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := harness.Run(check)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
