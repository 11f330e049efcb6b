package braces_test

import (
	"errors"
	"fmt"

	"github.com/lwmacct/251019-go-pkg-braces/pkg/braces"
)

// Example_expand 演示嵌套分组的惰性展开。
func Example_expand() {
	seq, err := braces.Expand("thumbnail.{png,jp{e,}g}")
	if err != nil {
		fmt.Println(err)
		return
	}
	for s := range seq {
		fmt.Println(s)
	}

	// Output:
	// thumbnail.png
	// thumbnail.jpeg
	// thumbnail.jpg
}

// Example_count 演示不遍历结果直接计数。
func Example_count() {
	p := braces.MustCompile("{a,b,c}-{1,2}")
	n, _ := p.Count()
	fmt.Println(n, p.Groups())

	// Output:
	// 6 2
}

// Example_malformed 演示未闭合分组的错误。
func Example_malformed() {
	_, err := braces.Expand("a{b,c")
	fmt.Println(err)
	fmt.Println(errors.Is(err, braces.ErrMalformedInput))

	// Output:
	// braces: malformed input: unterminated group (offset 1)
	// true
}
