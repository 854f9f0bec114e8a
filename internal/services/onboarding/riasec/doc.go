// Package riasec builds the RIASEC interest questionnaire.
//
// The questionnaire is a fixed catalog of situational scenarios. Each
// scenario offers four options, and every option carries a score vector over
// the six RIASEC traits.
//
// # Determinism
//
// Build is a pure function of its seed and shuffle flag. Scenario order (when
// shuffled) and option order are derived from per-input hashes feeding a
// mulberry32 generator, so a returning user sees exactly the same
// questionnaire across calls and processes. Each scenario seeds its own
// generator from "<seed>:<scenarioID>", keeping option shuffles independent
// of each other and of the scenario shuffle.
//
// # Identity
//
// Option IDs have the form "<scenarioID>:o<index>" where index is the
// option's position in the catalog. Shuffling changes positions only, never
// IDs, so recorded answers stay valid regardless of presentation order.
package riasec
