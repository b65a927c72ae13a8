package utils

import (
	"io"
	"net/http"
	"strings"
)

// ValidateImageContent checks if the file content matches the extension.
func ValidateImageContent(reader io.ReadSeeker, ext string) (bool, string) {
	buffer := make([]byte, 512)
	_, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return false, "读取文件内容失败"
	}

	// 重置读取位置
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return false, "重置文件读取位置失败"
	}

	contentType := http.DetectContentType(buffer)

	allowedTypes := map[string]map[string]bool{
		"image/jpeg": {".jpg": true, ".jpeg": true},
		"image/png":  {".png": true},
		"image/gif":  {".gif": true},
		"image/webp": {".webp": true},
	}

	if exts, ok := allowedTypes[contentType]; ok {
		if exts[strings.ToLower(ext)] {
			return true, ""
		}
	}

	return false, "文件真实类型(" + contentType + ")与扩展名(" + ext + ")不匹配或不支持"
}

// ContentTypeForExt 返回图片扩展名对应的 Content-Type，未知扩展名返回 application/octet-stream。
func ContentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return "application/octet-stream"
}

// ExtensionAllowed 判断扩展名是否在逗号分隔的白名单内。
func ExtensionAllowed(ext, allowList string) bool {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return false
	}
	for _, item := range strings.Split(allowList, ",") {
		if strings.ToLower(strings.TrimSpace(item)) == ext {
			return true
		}
	}
	return false
}
