package labelocr

import "strings"

// DefaultAlphabet 内置字符集，26 个大写字母，空白符索引为 26
var DefaultAlphabet = NewAlphabet(strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", ""))

// Alphabet 有序字符集，空白符固定占用最后一个类别索引，只读
type Alphabet struct {
	symbols []string
}

// NewAlphabet 按顺序构造字符集
func NewAlphabet(symbols []string) Alphabet {
	return Alphabet{symbols: symbols}
}

// NumClasses 类别总数（字符数 + 空白符）
func (a Alphabet) NumClasses() int {
	return len(a.symbols) + 1
}

// BlankIndex 空白符的类别索引
func (a Alphabet) BlankIndex() int {
	return len(a.symbols)
}

// Symbol 类别索引对应的字符，空白符与越界索引返回空串
func (a Alphabet) Symbol(idx int) string {
	if idx < 0 || idx >= len(a.symbols) {
		return ""
	}
	return a.symbols[idx]
}
