package textutil_test

import (
	"fmt"

	"github.com/hasbyte1/go-ww/textutil"
)

func ExampleMultisplit() {
	chunks, _ := textutil.Multisplit("a,b;c/d", []string{",", ";", "/"}, textutil.SplitOptions{})
	fmt.Printf("%q\n", chunks)
	// Output: ["a" "b" "c" "d"]
}

func ExampleMultireplace() {
	out, _ := textutil.Multireplace("a1b33c-d", []string{`\d+`, "-"}, []string{","}, textutil.ReplaceOptions{})
	fmt.Println(out)
	// Output: a,b,c,d
}

func ExampleFormat() {
	out, _ := textutil.Format("{name}: {score:>10,.2f}", nil, map[string]any{"name": "bob", "score": 12345.678})
	fmt.Printf("%q\n", out)
	// Output: "bob:  12,345.68"
}

func ExampleDedent() {
	fmt.Print(textutil.Dedent(`
		first
		  second
	`))
	// Output:
	// first
	//   second
}

func ExampleJoin() {
	out, _ := textutil.Join(", ", []any{1, 2.5, "x"}, "<{}>", nil)
	fmt.Println(out)
	// Output: <1>, <2.5>, <x>
}
