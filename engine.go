package labelocr

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/getcharzp/go-labelocr/internal/onnx"
	"github.com/getcharzp/go-labelocr/internal/util"
	ort "github.com/getcharzp/onnxruntime_purego"
	"github.com/up-zero/gotool/convertutil"
	"github.com/up-zero/gotool/imageutil"
)

// 输入输出节点名，模型导出时约定
const (
	inputName  = "input"
	outputName = "output"
)

// NewEngine 初始化引擎
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.OnnxRuntimeLibPath == "" {
		cfg.OnnxRuntimeLibPath = DefaultLibraryPath()
	}

	oc := new(onnx.Config)
	_ = convertutil.CopyProperties(cfg, oc)

	if err := oc.New(); err != nil {
		return nil, err
	}

	alphabet := DefaultAlphabet
	if cfg.DictPath != "" {
		dict, err := util.LoadDict(cfg.DictPath)
		if err != nil {
			return nil, fmt.Errorf("加载字符集失败: %w", err)
		}
		alphabet = NewAlphabet(dict)
	}

	registry := DefaultRegistry()
	if len(cfg.Models) > 0 {
		registry = NewRegistry(cfg.Models...)
	}

	return &Engine{
		cfg:      cfg,
		registry: registry,
		alphabet: alphabet,
		onnx:     oc,
		sessions: make(map[string]*modelSession),
	}, nil
}

// Run 识别图像文件中的标签文本
func (e *Engine) Run(imagePath string, modelType string) (string, error) {
	modelCfg, artifact, err := e.resolve(modelType)
	if err != nil {
		return "", err
	}

	img, err := imageutil.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPreprocessingFailed, err)
	}

	return e.run(img, modelCfg, artifact)
}

// RunImage 识别已解码图像中的标签文本
func (e *Engine) RunImage(img image.Image, modelType string) (string, error) {
	modelCfg, artifact, err := e.resolve(modelType)
	if err != nil {
		return "", err
	}
	return e.run(img, modelCfg, artifact)
}

// resolve 查找模型配置并确认模型文件存在，任何失败都发生在预处理之前
func (e *Engine) resolve(modelType string) (ModelConfig, string, error) {
	modelCfg, err := e.registry.Lookup(modelType)
	if err != nil {
		return ModelConfig{}, "", err
	}

	artifact := filepath.Join(e.cfg.ModelDir, modelCfg.ArtifactFile)
	if _, err := os.Stat(artifact); err != nil {
		return ModelConfig{}, "", fmt.Errorf("%w: %s", ErrModelArtifactMissing, artifact)
	}

	return modelCfg, artifact, nil
}

func (e *Engine) run(img image.Image, modelCfg ModelConfig, artifact string) (string, error) {
	inputData, inputShape, err := Preprocess(img, modelCfg)
	if err != nil {
		return "", err
	}

	session, err := e.session(modelCfg.Key, artifact)
	if err != nil {
		return "", err
	}

	inputTensor, err := ort.NewTensor(inputShape, inputData)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInferenceFailed, err)
	}
	defer inputTensor.Destroy()

	inputValues := map[string]*ort.Value{
		inputName: inputTensor,
	}

	outputValues, err := session.Run(inputValues)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInferenceFailed, err)
	}

	outputValue, ok := outputValues[outputName]
	if !ok {
		return "", fmt.Errorf("%w: 输出节点 %s 不存在", ErrInferenceFailed, outputName)
	}
	defer outputValue.Destroy()

	outputShape, err := outputValue.GetShape()
	if err != nil {
		return "", fmt.Errorf("%w: 获取输出形状失败: %w", ErrInferenceFailed, err)
	}
	if err := e.alphabet.CheckShape(outputShape); err != nil {
		return "", err
	}

	outputData, err := ort.GetTensorData[float32](outputValue)
	if err != nil {
		return "", fmt.Errorf("%w: 获取输出数据失败: %w", ErrInferenceFailed, err)
	}

	return e.alphabet.Decode(outputData)
}

// session 按模型类型懒加载会话，每个类型只创建一次，可被多个调用并发复用
func (e *Engine) session(key, artifact string) (*ort.Session, error) {
	e.mu.Lock()
	entry, ok := e.sessions[key]
	if !ok {
		entry = new(modelSession)
		e.sessions[key] = entry
	}
	e.mu.Unlock()

	entry.once.Do(func() {
		sess, err := e.onnx.OnnxEngine.NewSession(artifact, e.onnx.SessionOptions)
		if err != nil {
			entry.err = fmt.Errorf("%w: 创建会话失败: %w", ErrInferenceFailed, err)
			return
		}
		entry.sess = sess
	})

	return entry.sess, entry.err
}

// Destroy 释放全部会话资源
func (e *Engine) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, entry := range e.sessions {
		if entry.sess != nil {
			entry.sess.Destroy()
		}
	}
	e.sessions = make(map[string]*modelSession)
}
