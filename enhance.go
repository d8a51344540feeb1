package labelocr

import (
	"image"

	"github.com/disintegration/imaging"
)

// CropRegion 从整屏截图中裁出标签区域，rect 为源图像坐标系下的区域
func CropRegion(img image.Image, rect image.Rectangle) image.Image {
	return imaging.Crop(img, rect)
}

// EnhanceLabel 对低对比度截图做对比度拉伸与锐化，识别前可选调用
func EnhanceLabel(img image.Image) image.Image {
	dst := imaging.AdjustContrast(img, 20)
	return imaging.Sharpen(dst, 0.5)
}
