package labelocr

import (
	"sync"

	"github.com/getcharzp/go-labelocr/internal/onnx"
	ort "github.com/getcharzp/onnxruntime_purego"
)

// ModelConfig 单个模型类型的固定几何信息
type ModelConfig struct {
	Key          string // 模型类型
	InputWidth   int    // 模型输入宽度
	InputHeight  int    // 模型输入高度
	ArtifactFile string // ModelDir 下的模型文件名
}

// Config 引擎配置信息
type Config struct {
	// ModelDir 模型文件所在目录，每个模型类型对应其中一个 onnx 文件
	ModelDir string
	// DictPath 自定义字符集文件（每行一个字符），留空使用内置 A-Z 字符集
	DictPath string
	// Models 自定义模型类型表，留空使用内置注册表
	Models             []ModelConfig
	OnnxRuntimeLibPath string
}

// Engine 标签识别引擎
type Engine struct {
	cfg      Config
	registry *Registry
	alphabet Alphabet
	onnx     *onnx.Config

	// 会话按模型类型懒加载，每个类型只创建一次
	mu       sync.Mutex
	sessions map[string]*modelSession
}

type modelSession struct {
	once sync.Once
	sess *ort.Session
	err  error
}
