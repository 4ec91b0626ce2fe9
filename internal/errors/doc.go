// Package errors provides coded, structured errors for the ripple runtime
// and the non-fatal warning channel used for programmer mistakes.
//
// # Error Categories
//
//   - runtime: failures raised while propagating or scheduling (E1xx)
//   - render: reconciliation failures (E2xx)
//   - config: configuration problems (E3xx)
//   - usage: misuse of the API reported as warnings (Wxxx)
//
// # Error Codes
//
// Each code maps to a registered template with a short message and a
// longer explanation:
//
//	err := errors.New("E101").Wrap(cause)
//	fmt.Println(err.Format())
//
// # Warnings
//
// Programmer errors such as writing to a finalized Var never fail the
// caller. They are reported through a Warner, which logs a structured
// record per code and throttles repeated occurrences:
//
//	w := errors.NewWarner(logger, errors.WarnerConfig{Rate: 1, Burst: 5})
//	w.Warn("W001", "var_id", id)
package errors
