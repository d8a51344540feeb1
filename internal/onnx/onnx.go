package onnx

import (
	"fmt"

	ort "github.com/getcharzp/onnxruntime_purego"
)

// Config onnxruntime 运行时配置
type Config struct {
	OnnxRuntimeLibPath string

	OnnxEngine     *ort.Engine
	SessionOptions *ort.SessionOptions
}

// New 加载 onnxruntime 动态库并初始化会话选项
func (c *Config) New() error {
	engine, err := ort.NewEngine(c.OnnxRuntimeLibPath)
	if err != nil {
		return fmt.Errorf("加载 onnxruntime 动态库失败: %w", err)
	}
	c.OnnxEngine = engine

	opts, err := engine.NewSessionOptions()
	if err != nil {
		return fmt.Errorf("创建会话选项失败: %w", err)
	}
	c.SessionOptions = opts

	return nil
}
