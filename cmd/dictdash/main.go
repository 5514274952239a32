// Command dictdash solves Dictionary Dash problems: shortest word
// ladders between query pairs over a fixed dictionary, read from stdin
// or a file in the standard line protocol.
package main

func main() {
	Execute()
}
