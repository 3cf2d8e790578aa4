// Command sum prints the sum of the integers read from standard input. It is
// a well-behaved target for exercising the harness end to end.
package main

import (
	"bufio"
	"fmt"
	"os"
)

func main() {
	fmt.Println(readTotal())
}

func readTotal() int64 {
	reader := bufio.NewReader(os.Stdin)
	var total int64
	for {
		var value int64
		if _, err := fmt.Fscan(reader, &value); err != nil {
			return total
		}
		total += value
	}
}
