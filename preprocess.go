package labelocr

import (
	"fmt"
	"image"

	"github.com/up-zero/gotool/imageutil"
	"golang.org/x/image/draw"
)

// Preprocess 将源图像转换为模型输入张量，返回 [1, 1, H, W] 行主序的扁平数据及形状。
// 双线性拉伸到目标几何（两轴独立缩放，不保持宽高比），灰度化后除以 255 归一化到 [0, 1]，
// 与训练时的预处理保持一致。
func Preprocess(img image.Image, cfg ModelConfig) ([]float32, []int64, error) {
	if img == nil {
		return nil, nil, fmt.Errorf("%w: 源图像为空", ErrPreprocessingFailed)
	}

	targetW, targetH := cfg.InputWidth, cfg.InputHeight
	if targetW <= 0 || targetH <= 0 {
		return nil, nil, fmt.Errorf("%w: 非法目标几何 %dx%d", ErrPreprocessingFailed, targetW, targetH)
	}

	resized := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.BiLinear.Scale(resized, resized.Bounds(), img, img.Bounds(), draw.Src, nil)

	grayImg := imageutil.Grayscale(resized)

	inputData := make([]float32, 1*1*targetH*targetW)
	for y := 0; y < targetH; y++ {
		for x := 0; x < targetW; x++ {
			pix := grayImg.Pix[y*grayImg.Stride+x]
			inputData[y*targetW+x] = float32(pix) / 255.0
		}
	}

	shape := []int64{1, 1, int64(targetH), int64(targetW)}
	return inputData, shape, nil
}
