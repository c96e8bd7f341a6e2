// Package taxlot turns a list of normalized crypto activity records into a
// US capital gains summary and tax form structures.
//
// The engine is a pipeline of pure functions, leaves first:
//   - Classification: [Classify] labels free-text activity with a [Kind], and
//     [DetectAnomalies] flags advisory patterns such as likely wash sales.
//   - Gains and losses: [Evaluate], [EvaluatePeriod] and [CalculateGainsLosses] order the
//     transactions with a [Method], flag wash sales, and sum short-term gains,
//     long-term gains, income and losses into a [Summary].
//   - Lots: [MatchLots] pools acquisitions into lots and matches disposals
//     against them, and [ResolveCostBasis] fills missing cost bases from
//     those lots.
//   - Forms: [GenerateForm8949] and [GenerateScheduleD] project the results
//     into Form 8949 and Schedule D structures.
//
// All amounts are exact decimals in USD. The evaluation instant is always an
// explicit parameter, so that a computation only depends on its inputs.
//
// Transactions are read and written as JSONL by [DecodeTransactions] and
// [EncodeTransactions]. This package is the foundation of the `tlc` command
// line tool.
package taxlot
