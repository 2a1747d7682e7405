package types

import "slices"

// Property 名值对属性
//
// 仅 Propagate 为 true 的属性会被写到线上。
type Property struct {
	Name      string
	Value     string
	Propagate bool
}

// BinaryProperty 二进制属性
type BinaryProperty struct {
	Name      string
	Value     []byte
	Propagate bool
}

// Token 安全插件交换的不透明令牌（DataHolder）
type Token struct {
	ClassID          string
	Properties       []Property
	BinaryProperties []BinaryProperty
}

// IsEmpty 未设置 ClassID 的令牌视为空
func (t Token) IsEmpty() bool {
	return t.ClassID == ""
}

// Property 按名称查找属性值
func (t Token) Property(name string) (string, bool) {
	for _, p := range t.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Clone 深拷贝
func (t Token) Clone() Token {
	c := Token{
		ClassID:    t.ClassID,
		Properties: slices.Clone(t.Properties),
	}
	if t.BinaryProperties != nil {
		c.BinaryProperties = make([]BinaryProperty, len(t.BinaryProperties))
		for i, bp := range t.BinaryProperties {
			c.BinaryProperties[i] = BinaryProperty{
				Name:      bp.Name,
				Value:     slices.Clone(bp.Value),
				Propagate: bp.Propagate,
			}
		}
	}
	return c
}

// PropertyPair 参与者属性列表中的名值对
type PropertyPair struct {
	Name  string
	Value string
}
