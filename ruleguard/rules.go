package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

func adapterRules(m dsl.Matcher) {
	// Two consecutive guards returning the same value are mergeable with ||.
	m.Match(`if $c1 { return $ret }; if $c2 { return $ret }`).
		Report(`two consecutive guards return the same value; consider merging conditions with ||`).
		Suggest(`if $c1 || $c2 { return $ret }`)

	// A request built without a context loses cancellation from the host.
	m.Match(`http.NewRequest($method, $url, $body)`).
		Report(`use http.NewRequestWithContext so tool-call cancellation propagates`)

	// Logging to stdout corrupts the stdio MCP stream.
	m.Match(`fmt.Println($*args)`, `fmt.Printf($*args)`, `fmt.Print($*args)`).
		Report(`stdout carries the MCP protocol; log to stderr via the log package instead`)
}
