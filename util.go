package labelocr

import ort "github.com/getcharzp/onnxruntime_purego"

// DefaultLibraryPath 根据运行时环境判断加载哪个 onnxruntime 库文件
func DefaultLibraryPath() string {
	return ort.DefaultLibraryPath()
}
