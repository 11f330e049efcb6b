package braces

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/bits"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 错误定义
// ═══════════════════════════════════════════════════════════════════════════

var (
	// ErrMalformedInput 花括号未配对（缺少 '}' 或多出 '}'）。
	ErrMalformedInput = errors.New("braces: malformed input")

	// ErrTooDeep 分组嵌套超过 [WithMaxDepth] 设置的深度。
	ErrTooDeep = errors.New("braces: nesting too deep")

	// ErrTooManyResults 结果数量超过上限或超出 int 范围。
	ErrTooManyResults = errors.New("braces: too many results")
)

// SyntaxError 描述输入中出错的位置。
//
// Err 为 [ErrMalformedInput] 或 [ErrTooDeep]，可通过 errors.Is 判断。
type SyntaxError struct {
	Input  string
	Offset int // 出错花括号的字节偏移
	Reason string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s (offset %d)", e.Err, e.Reason, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ═══════════════════════════════════════════════════════════════════════════
// 解析
// ═══════════════════════════════════════════════════════════════════════════

// node 是字面片段或分组；分组的每个候选项本身又是一个节点序列。
type node struct {
	lit   string
	group bool
	alts  [][]node
}

type parser struct {
	src      string
	pos      int
	maxDepth int
}

func (p *parser) fail(err error, offset int, reason string) error {
	return &SyntaxError{Input: p.src, Offset: offset, Reason: reason, Err: err}
}

// parseSeq 读取一个节点序列。
//
// depth 为 0 时读到输入末尾为止，逗号是普通字符；
// depth > 0 时遇到同层的 ',' 或 '}' 即返回，由 parseGroup 消费该字符。
func (p *parser) parseSeq(depth int) ([]node, error) {
	var seq []node
	start := p.pos
	flush := func() {
		if p.pos > start {
			seq = append(seq, node{lit: p.src[start:p.pos]})
		}
	}

	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			flush()
			g, err := p.parseGroup(depth + 1)
			if err != nil {
				return nil, err
			}
			seq = append(seq, g)
			start = p.pos
		case '}':
			if depth == 0 {
				return nil, p.fail(ErrMalformedInput, p.pos, "unmatched '}'")
			}
			flush()
			return seq, nil
		case ',':
			if depth > 0 {
				flush()
				return seq, nil
			}
			p.pos++
		default:
			p.pos++
		}
	}
	flush()

	return seq, nil
}

// parseGroup 从 '{' 开始读取一个分组，返回时 pos 位于匹配的 '}' 之后。
func (p *parser) parseGroup(depth int) (node, error) {
	open := p.pos
	if depth > p.maxDepth {
		return node{}, p.fail(ErrTooDeep, open, fmt.Sprintf("nesting exceeds %d", p.maxDepth))
	}
	p.pos++

	var alts [][]node
	for {
		alt, err := p.parseSeq(depth)
		if err != nil {
			return node{}, err
		}
		alts = append(alts, alt)

		if p.pos >= len(p.src) {
			return node{}, p.fail(ErrMalformedInput, open, "unterminated group")
		}
		c := p.src[p.pos]
		p.pos++
		if c == '}' {
			return node{group: true, alts: alts}, nil
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Pattern
// ═══════════════════════════════════════════════════════════════════════════

// Pattern 是编译后的输入，不可变，可并发使用。
type Pattern struct {
	src  string
	root []node
	opts options
}

// Compile 解析 input，校验花括号配对与嵌套深度。
func Compile(input string, opts ...Option) (*Pattern, error) {
	o := newOptions(opts)
	if !strings.ContainsAny(input, "{}") {
		return &Pattern{src: input, root: []node{{lit: input}}, opts: o}, nil
	}

	p := &parser{src: input, maxDepth: o.maxDepth}
	root, err := p.parseSeq(0)
	if err != nil {
		return nil, err
	}

	return &Pattern{src: input, root: root, opts: o}, nil
}

// MustCompile 调用 [Compile] 并在失败时 panic，适合包级变量初始化。
func MustCompile(input string, opts ...Option) *Pattern {
	p, err := Compile(input, opts...)
	if err != nil {
		panic(fmt.Sprintf("braces: compile %q: %v", input, err))
	}

	return p
}

// String 返回原始输入。
func (p *Pattern) String() string {
	return p.src
}

// Groups 返回所有层级的分组总数。
func (p *Pattern) Groups() int {
	return countGroups(p.root)
}

func countGroups(seq []node) int {
	n := 0
	for _, nd := range seq {
		if !nd.group {
			continue
		}
		n++
		for _, alt := range nd.alts {
			n += countGroups(alt)
		}
	}

	return n
}

// All 惰性地产生全部展开结果。
//
// 每次 range 都会重新遍历；提前 break 是安全的。
func (p *Pattern) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		buf := make([]byte, 0, len(p.src))
		walk(p.root, nil, buf, yield)
	}
}

// frame 记录某个分组之后尚未处理的节点，形成延续链。
type frame struct {
	rest []node
	next *frame
}

// walk 以回溯方式拼接结果：buf 的前缀属于调用方，追加部分在兄弟分支间复用。
func walk(seq []node, next *frame, buf []byte, yield func(string) bool) bool {
	for len(seq) > 0 {
		nd := seq[0]
		seq = seq[1:]
		if !nd.group {
			buf = append(buf, nd.lit...)
			continue
		}

		k := &frame{rest: seq, next: next}
		for _, alt := range nd.alts {
			if !walk(alt, k, buf, yield) {
				return false
			}
		}

		return true
	}

	if next != nil {
		return walk(next.rest, next.next, buf, yield)
	}

	return yield(string(buf))
}

// Count 不遍历结果，直接计算展开数量。
//
// 序列取各节点数量之积，分组取各候选项数量之和。超出 int 范围时返回 [ErrTooManyResults]。
func (p *Pattern) Count() (int, error) {
	n, ok := countSeq(p.root)
	if !ok || n > math.MaxInt {
		return 0, fmt.Errorf("%w: count overflows int", ErrTooManyResults)
	}

	return int(n), nil
}

func countSeq(seq []node) (uint64, bool) {
	total := uint64(1)
	for _, nd := range seq {
		if !nd.group {
			continue
		}

		var sum uint64
		for _, alt := range nd.alts {
			c, ok := countSeq(alt)
			if !ok {
				return 0, false
			}
			var carry uint64
			sum, carry = bits.Add64(sum, c, 0)
			if carry != 0 {
				return 0, false
			}
		}

		hi, lo := bits.Mul64(total, sum)
		if hi != 0 {
			return 0, false
		}
		total = lo
	}

	return total, true
}

// Strings 收集全部结果，受 [WithMaxResults] 限制。
func (p *Pattern) Strings() ([]string, error) {
	n, err := p.Count()
	if err != nil {
		return nil, err
	}
	if limit := p.opts.maxResults; limit > 0 && n > limit {
		return nil, fmt.Errorf("%w: %d results exceed limit %d", ErrTooManyResults, n, limit)
	}

	out := make([]string, 0, min(n, 1<<16))
	for s := range p.All() {
		out = append(out, s)
	}

	return out, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 便捷函数
// ═══════════════════════════════════════════════════════════════════════════

// Expand 校验 input 并返回惰性结果序列。
//
// 不含花括号的输入只产生其自身。花括号未配对时返回 [ErrMalformedInput]，
// 此时不会产生任何结果。
func Expand(input string, opts ...Option) (iter.Seq[string], error) {
	p, err := Compile(input, opts...)
	if err != nil {
		return nil, err
	}

	return p.All(), nil
}

// ExpandAll 返回全部展开结果。
func ExpandAll(input string, opts ...Option) ([]string, error) {
	p, err := Compile(input, opts...)
	if err != nil {
		return nil, err
	}

	return p.Strings()
}

// Count 返回 input 的展开数量。
func Count(input string, opts ...Option) (int, error) {
	p, err := Compile(input, opts...)
	if err != nil {
		return 0, err
	}

	return p.Count()
}

// Validate 仅做语法校验。
func Validate(input string, opts ...Option) error {
	_, err := Compile(input, opts...)
	return err
}
