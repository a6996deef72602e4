// Package args implements OperatorArgs (RawParameters), the parsed
// key/value argument bag a compiled step's constructor reads from. Every
// successful lookup records the key as "used"; the resulting ledger
// drives diagnostic reporting of arguments a constructor never consulted.
package args
