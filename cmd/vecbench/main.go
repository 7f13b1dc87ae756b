// Command vecbench times slot vector operations against the heap and mmap arenas.
package main

func main() {
	execute()
}
