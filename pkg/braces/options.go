package braces

// DefaultMaxDepth 默认允许的最大分组嵌套深度。
const DefaultMaxDepth = 256

// options 展开选项。
type options struct {
	maxDepth   int // 最大嵌套深度，<= 0 时使用 DefaultMaxDepth
	maxResults int // 收集结果的上限，0 表示不限制
}

// Option 展开选项函数。
type Option func(*options)

// WithMaxDepth 设置分组的最大嵌套深度。
//
// 超出时 [Compile] 返回 [ErrTooDeep]。n <= 0 表示使用 [DefaultMaxDepth]。
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithMaxResults 限制 [ExpandAll] 与 [Pattern.Strings] 收集的结果数量。
//
// 超出时返回 [ErrTooManyResults]。0 表示不限制。
// 惰性遍历 ([Pattern.All]) 不受此限制，调用方可随时停止。
func WithMaxResults(n int) Option {
	return func(o *options) {
		o.maxResults = n
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxDepth <= 0 {
		o.maxDepth = DefaultMaxDepth
	}
	if o.maxResults < 0 {
		o.maxResults = 0
	}

	return o
}
