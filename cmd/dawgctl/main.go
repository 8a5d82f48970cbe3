// Command dawgctl builds, queries, and dumps word-list automatons
// from the command line.
package main

func main() {
	execute()
}
