package util

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SniffMimeType 读取文件头并检测 MIME 类型，返回检测结果和已消费的字节
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "image/", "application/pdf"
func SniffMimeType(reader io.Reader, allowedTypes []string) (string, []byte, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", nil, err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, buffer[:n], nil
		}
	}

	return mimeType, buffer[:n], fmt.Errorf("%w: %s", ErrInvalidFileType, mimeType)
}

// IsImage 检测是否为图片
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
