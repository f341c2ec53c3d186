package question

// Item is one conversation-starter prompt
type Item struct {
	Primary   string `json:"en"`
	Secondary string `json:"cn"`
	Icon      string `json:"emoji"`
	Category  string `json:"category,omitempty"` // Empty means uncategorised
}

// Placeholder is returned by selection while no pool is loaded
var Placeholder = Item{
	Primary:   "Loading...",
	Secondary: "加载中...",
	Icon:      "⌛",
}

// Ready is the content of the resting card before the first spin
var Ready = Item{
	Primary:   "READY?",
	Secondary: "点击按钮启动",
	Icon:      "🎰",
}

// IsZero reports whether the item carries no content
func (i Item) IsZero() bool {
	return i.Primary == "" && i.Secondary == "" && i.Icon == ""
}
