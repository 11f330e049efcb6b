// Package braces 提供花括号展开 (brace expansion)。
//
// 输入由字面文本与 {...} 分组组成，分组内以逗号分隔候选项，候选项内部可以继续嵌套分组。
// 展开结果是为每个分组各选一个候选项后得到的全部字符串。
//
// # 语义说明
//
//  1. 逗号只在最内层的打开分组中充当分隔符，分组外的逗号是普通字符
//  2. 多个分组按从左到右的顺序做笛卡尔积
//  3. {} 视为仅含一个空候选项的分组，{a} 展开为 a
//  4. 花括号必须配对，否则返回 [ErrMalformedInput]
//  5. 结果顺序是确定的，但调用方不应依赖该顺序
//
// # 快速开始
//
// 惰性遍历全部结果：
//
//	seq, err := braces.Expand("thumbnail.{png,jp{e,}g}")
//	if err != nil {
//	    return err
//	}
//	for s := range seq {
//	    fmt.Println(s)
//	}
//
// 先编译再多次使用：
//
//	p := braces.MustCompile("{a,b}{1,2,3}")
//	n, _ := p.Count() // 6
//
// 详见 [Expand] 与 [Pattern] 文档。
package braces
