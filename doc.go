// Package fonda provides the building blocks for a quick fundamental
// analysis of a publicly traded company.
//
// The analysis is a strictly linear pipeline:
//   - Ticker Resolution: maps a free-text company name to an exchange
//     ticker, using a curated table first and a remote symbol search as
//     fallback.
//   - Statement Fetching: retrieves financial statements and key metrics
//     from a market data provider (see the yahoo subpackage).
//   - Ratio Calculation: derives growth, profitability, solvency and
//     valuation indicators from the fetched snapshot. Missing line items
//     mark the individual ratio as unavailable instead of failing the run.
//   - Rating: maps each ratio to a qualitative label through fixed,
//     sector-aware thresholds, and combines them into a weighted global
//     score with a one-line verdict.
//   - Reporting: assembles everything into a Report rendered as markdown
//     by the renderer subpackage.
//
// Nothing outlives a single run: the pipeline passes immutable values from
// stage to stage, and there is no stored state across invocations.
//
// This package serves as the foundational logic for the `fonda`
// command-line tool.
package fonda
