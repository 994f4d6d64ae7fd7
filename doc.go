// Package fina derives quarterly fundamentals metrics for a listed company.
//
// Given the income statements and balance sheets of a ticker, it computes:
//   - Growth: quarter over quarter revenue and EPS growth.
//   - Profitability: operating margin of the most recent quarter.
//   - Leverage: debt to equity, with equity floored at 1.
//   - Valuation: P/E from the current price when EPS is positive.
//   - Score: a heuristic 0-100 health indicator made of additive threshold checks.
//
// Scenario analysis re-scores the last computed metrics under hypothetical
// revenue growth and operating margin, and chart series shape the most recent
// quarters for display.
//
// Data comes from collaborators (StatementRepository, QuoteProvider,
// NewsProvider, PeerProvider) that the Analyzer calls sequentially for each
// request. This package serves as the foundational logic for the `fina`
// command-line tool.
package fina
