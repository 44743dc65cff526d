package main

import "github.com/Matt777777777/AthletIQ-sub000/cmd/athletiq"

func main() {
	athletiq.Execute()
}
