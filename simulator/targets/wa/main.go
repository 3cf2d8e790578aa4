// Command wa is an off-by-one variant of sum that always answers wrong.
package main

import (
	"bufio"
	"fmt"
	"os"
)

func main() {
	reader := bufio.NewReader(os.Stdin)
	var total int64
	for {
		var value int64
		if _, err := fmt.Fscan(reader, &value); err != nil {
			break
		}
		total += value
	}
	fmt.Println(total + 1)
}
