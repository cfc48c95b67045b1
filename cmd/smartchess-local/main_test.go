package main

import "testing"

func TestBrowserCommand(t *testing.T) {
	const url = "http://127.0.0.1:2888"
	name, args := browserCommand(url)
	if name == "" || len(args) == 0 {
		t.Fatalf("got name=%q args=%v", name, args)
	}
	if got := args[len(args)-1]; got != url {
		t.Fatalf("last arg: got=%q want=%q", got, url)
	}
}
