package labelocr

import (
	"fmt"
	"sort"
)

// Registry 模型类型注册表，启动时构建，只读
type Registry struct {
	configs map[string]ModelConfig
}

// NewRegistry 构造注册表，Key 相同的后者覆盖前者
func NewRegistry(configs ...ModelConfig) *Registry {
	m := make(map[string]ModelConfig, len(configs))
	for _, c := range configs {
		m[c.Key] = c
	}
	return &Registry{configs: m}
}

// DefaultRegistry 内置支持的模型类型
func DefaultRegistry() *Registry {
	return NewRegistry(
		ModelConfig{Key: "melon", InputWidth: 96, InputHeight: 32, ArtifactFile: "melon.onnx"},
		ModelConfig{Key: "nol", InputWidth: 128, InputHeight: 32, ArtifactFile: "nol.onnx"},
	)
}

// Lookup 按模型类型查找配置，未注册时返回 ErrUnsupportedModelType
func (r *Registry) Lookup(key string) (ModelConfig, error) {
	cfg, ok := r.configs[key]
	if !ok {
		return ModelConfig{}, fmt.Errorf("%w: %s", ErrUnsupportedModelType, key)
	}
	return cfg, nil
}

// Keys 已注册的模型类型列表，按字典序排列
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.configs))
	for k := range r.configs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
