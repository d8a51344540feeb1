package labelocr

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func fillRect(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func TestPreprocessGeometry(t *testing.T) {
	// 源图像尺寸任意，输出几何始终等于模型配置
	cfg := ModelConfig{Key: "melon", InputWidth: 96, InputHeight: 32}
	sizes := []image.Rectangle{
		image.Rect(0, 0, 200, 50),
		image.Rect(0, 0, 96, 32),
		image.Rect(0, 0, 7, 300),
	}

	for _, bounds := range sizes {
		img := image.NewRGBA(bounds)
		fillRect(img, bounds, color.RGBA{R: 200, G: 100, B: 50, A: 255})

		data, shape, err := Preprocess(img, cfg)
		if err != nil {
			t.Fatalf("预处理失败: %v", err)
		}
		if len(data) != 96*32 {
			t.Fatalf("期望张量长度 %d, 实际 %d", 96*32, len(data))
		}
		want := []int64{1, 1, 32, 96}
		for i, dim := range want {
			if shape[i] != dim {
				t.Fatalf("期望形状 %v, 实际 %v", want, shape)
			}
		}
		for i, v := range data {
			if v < 0 || v > 1 {
				t.Fatalf("索引 %d 的值 %v 超出 [0, 1]", i, v)
			}
		}
	}
}

func TestPreprocessNormalization(t *testing.T) {
	// 等值 RGB 的灰度应为原值除以 255
	cfg := ModelConfig{InputWidth: 32, InputHeight: 16}
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	fillRect(img, img.Bounds(), color.RGBA{R: 128, G: 128, B: 128, A: 255})

	data, _, err := Preprocess(img, cfg)
	if err != nil {
		t.Fatalf("预处理失败: %v", err)
	}

	want := float32(128) / 255.0
	for i, v := range data {
		if v < want-0.02 || v > want+0.02 {
			t.Fatalf("索引 %d 期望约 %v, 实际 %v", i, want, v)
		}
	}
}

func TestPreprocessRowMajorLayout(t *testing.T) {
	// 上半黑下半白：行主序下前排值应接近 0，末排值应接近 1
	cfg := ModelConfig{InputWidth: 32, InputHeight: 16}
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	fillRect(img, image.Rect(0, 0, 64, 16), color.RGBA{A: 255})
	fillRect(img, image.Rect(0, 16, 64, 32), color.RGBA{R: 255, G: 255, B: 255, A: 255})

	data, _, err := Preprocess(img, cfg)
	if err != nil {
		t.Fatalf("预处理失败: %v", err)
	}
	if data[0] > 0.25 {
		t.Fatalf("首行应为暗色, 实际 %v", data[0])
	}
	if last := data[len(data)-1]; last < 0.75 {
		t.Fatalf("末行应为亮色, 实际 %v", last)
	}

	// 左黑右白：同一行内首列暗、末列亮
	img2 := image.NewRGBA(image.Rect(0, 0, 64, 32))
	fillRect(img2, image.Rect(0, 0, 32, 32), color.RGBA{A: 255})
	fillRect(img2, image.Rect(32, 0, 64, 32), color.RGBA{R: 255, G: 255, B: 255, A: 255})

	data2, _, err := Preprocess(img2, cfg)
	if err != nil {
		t.Fatalf("预处理失败: %v", err)
	}
	if data2[0] > 0.25 {
		t.Fatalf("首列应为暗色, 实际 %v", data2[0])
	}
	if right := data2[cfg.InputWidth-1]; right < 0.75 {
		t.Fatalf("末列应为亮色, 实际 %v", right)
	}
}

func TestPreprocessStretchIgnoresAspectRatio(t *testing.T) {
	// 两轴独立拉伸：源图右半白，无论源宽高比如何，输出右半都应为亮色
	cfg := ModelConfig{InputWidth: 96, InputHeight: 32}
	img := image.NewRGBA(image.Rect(0, 0, 400, 20))
	fillRect(img, image.Rect(0, 0, 200, 20), color.RGBA{A: 255})
	fillRect(img, image.Rect(200, 0, 400, 20), color.RGBA{R: 255, G: 255, B: 255, A: 255})

	data, _, err := Preprocess(img, cfg)
	if err != nil {
		t.Fatalf("预处理失败: %v", err)
	}

	// 若按宽高比缩放会出现 letterbox 空边，此处校验整幅都被内容填满
	for y := 0; y < cfg.InputHeight; y++ {
		left := data[y*cfg.InputWidth]
		right := data[y*cfg.InputWidth+cfg.InputWidth-1]
		if left > 0.25 {
			t.Fatalf("第 %d 行首列应为暗色, 实际 %v", y, left)
		}
		if right < 0.75 {
			t.Fatalf("第 %d 行末列应为亮色, 实际 %v", y, right)
		}
	}
}

func TestPreprocessNilImage(t *testing.T) {
	cfg := ModelConfig{InputWidth: 96, InputHeight: 32}
	_, _, err := Preprocess(nil, cfg)
	if !errors.Is(err, ErrPreprocessingFailed) {
		t.Fatalf("期望 ErrPreprocessingFailed, 实际 %v", err)
	}
}

func TestPreprocessBadGeometry(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	_, _, err := Preprocess(img, ModelConfig{InputWidth: 0, InputHeight: 32})
	if !errors.Is(err, ErrPreprocessingFailed) {
		t.Fatalf("期望 ErrPreprocessingFailed, 实际 %v", err)
	}
}
