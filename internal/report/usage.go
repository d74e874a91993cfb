package report

// Usage is printed for help, unknown commands and usage errors
const Usage = `Usage: prefixgender [options]
       prefixgender convert --gender male --prefix "MR"

  list                  Show all prefixes in system
  convert               Update all users gender
  --prefix <prefix>     The prefix to change
  --gender <gender>     The gender to set
  --force               Force the changes
  --verbose             Show more details
  seed <file>           Load customers and attributes from a fixture file
  help                  This help

  <prefix>    Use "list" to show all prefixes in system
  <gender>    Either male or female

Global options:
  --db <path>           SQLite customer database
  --config <path>       Configuration file (yaml, toml or json)
  --log-level <level>   Log level (debug, info, warn, error)

`
