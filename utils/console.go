package utils

import (
	"bufio"
	"fmt"
	"io"
)

// 等待输入回车后返回
func WaitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "Press Enter to exit...")
	reader := bufio.NewReader(in)
	_, _ = reader.ReadString('\n')
}
