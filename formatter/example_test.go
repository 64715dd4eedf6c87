package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/flaglog/core"
	"github.com/philipp01105/flaglog/formatter"
)

func ExampleRender() {
	ts := time.Date(2020, 10, 2, 21, 27, 3, 123123000, time.UTC)

	h := formatter.Render(core.LstdFlags|core.Lshortfile|core.Lmicroseconds|core.LUTC,
		ts, "myprogram: ", core.DebugLevel, "/src/main.go:12")
	fmt.Println(h + "hello, world")
	// Output:
	// myprogram: DEBUG 2020/10/02 21:27:03.123123 main.go:12: hello, world
}

func ExampleAppendLine() {
	ts := time.Date(2020, 10, 2, 21, 27, 3, 0, time.UTC)

	line := formatter.AppendLine(nil, core.LstdFlags|core.LUTC, ts, "", core.WarnLevel, "", "hello, world")
	fmt.Print(string(line))
	// Output:
	// WARN  2020/10/02 21:27:03 hello, world
}
