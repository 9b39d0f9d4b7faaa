package lbpxml

import "fmt"

// 本包实现游戏客户端使用的老式标签文本格式。
// 这是一种扁平的、手工拼接的类XML格式：元素顺序和标签名都是
// 与客户端的二进制兼容约定，输出必须逐字节稳定。
// 客户端不做任何转义处理，因此这里也刻意不转义。

// StringElement 生成一个单值元素，例如 <game>1</game>。
// value 使用 %v 格式化，布尔值会输出为 true/false。
func StringElement(name string, value any) string {
	return fmt.Sprintf("<%s>%v</%s>", name, value, name)
}

// TaggedStringElement 生成一个带单个属性的元素，
// 例如 <npHandle icon="abc">player</npHandle>。
func TaggedStringElement(name string, value any, tagKey string, tagValue any) string {
	return fmt.Sprintf("<%s %s=\"%v\">%v</%s>", name, tagKey, tagValue, value, name)
}

// BlankElement 生成一个空元素，例如 <photos></photos>。
// 客户端要求显式的闭合标签，不能使用自闭合形式。
func BlankElement(name string) string {
	return fmt.Sprintf("<%s></%s>", name, name)
}
