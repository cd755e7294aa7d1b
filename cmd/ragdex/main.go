// Command ragdex runs the retrieval-augmented answer engine: a server
// daemon plus local commands for indexing and querying.
package main

func main() {
	Execute()
}
