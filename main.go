package main

import "nebula/internal/vis"

func main() {
	vis.RunDesktop()
}
