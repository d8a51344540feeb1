package labelocr

import (
	"errors"
	"fmt"
)

// 错误分类，调用方可通过 errors.Is / errors.As 区分，内部不做重试
var (
	ErrUnsupportedModelType = errors.New("不支持的模型类型")
	ErrModelArtifactMissing = errors.New("模型文件不存在")
	ErrPreprocessingFailed  = errors.New("图像预处理失败")
	ErrInferenceFailed      = errors.New("推理失败")
)

// DimensionMismatchError 输出张量末维与字符集类别数不一致
type DimensionMismatchError struct {
	Expected int // 字符集类别数（含空白符）
	Got      int // 输出数据长度
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("输出维度不匹配: 类别数 %d 无法整除输出长度 %d", e.Expected, e.Got)
}
