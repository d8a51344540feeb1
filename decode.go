package labelocr

import "strings"

// CheckShape 校验输出张量的末维等于字符集类别数，不一致时返回 DimensionMismatchError
func (a Alphabet) CheckShape(shape []int64) error {
	if len(shape) == 0 {
		return &DimensionMismatchError{Expected: a.NumClasses(), Got: 0}
	}
	if got := int(shape[len(shape)-1]); got != a.NumClasses() {
		return &DimensionMismatchError{Expected: a.NumClasses(), Got: got}
	}
	return nil
}

// Decode CTC 贪心解码：逐时间步对 [seqLen, 1, numClasses] 的扁平数据取最高分类别，
// 去除空白符并折叠相邻重复类别。数据长度必须能被类别数整除，否则返回 DimensionMismatchError；
// 持有张量形状的调用方应先通过 CheckShape 校验末维。
func (a Alphabet) Decode(output []float32) (string, error) {
	numClasses := a.NumClasses()
	if len(output)%numClasses != 0 {
		return "", &DimensionMismatchError{Expected: numClasses, Got: len(output)}
	}

	blank := a.BlankIndex()
	seqLen := len(output) / numClasses

	var sb strings.Builder
	lastIdx := -1

	for t := 0; t < seqLen; t++ {
		stepData := output[t*numClasses : (t+1)*numClasses]

		// 以首元素起算做严格大于比较，得分相同时保留最小索引
		maxIdx := 0
		maxVal := stepData[0]
		for idx, val := range stepData[1:] {
			if val > maxVal {
				maxVal = val
				maxIdx = idx + 1
			}
		}

		// 与上一时间步的类别索引比较而非上一个输出字符，
		// 空白符会重置重复判断："A 空白 A" 解码为 "AA"
		if maxIdx != lastIdx && maxIdx != blank {
			sb.WriteString(a.symbols[maxIdx])
		}
		lastIdx = maxIdx
	}

	return sb.String(), nil
}
