// Package finance is the ledger's calculation engine: period aggregation,
// category distribution, cost of goods produced (HPP) and break-even analysis.
//
// Every function here is pure. Callers load the owner's records and pass them in;
// nothing in this package touches storage, clocks or loggers.
package finance
