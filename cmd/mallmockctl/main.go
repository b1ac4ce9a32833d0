// Command mallmockctl reads files through a fault-injecting allocator and
// sweeps every allocation ordinal to check that failures are handled.
package main

func main() {
	execute()
}
