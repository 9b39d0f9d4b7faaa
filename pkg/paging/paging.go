package paging

// PageAmount 计算总页数，即 ceil(total / pageSize)。
// total 为0时返回0，由调用方决定是否需要保底一页。
func PageAmount(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// PageAmountAtLeastOne 与 PageAmount 相同，但最少返回1页。
// 用于即使没有任何记录也要渲染一个空页面的列表。
func PageAmountAtLeastOne(total int64, pageSize int) int {
	amount := PageAmount(total, pageSize)
	if amount < 1 {
		return 1
	}
	return amount
}

// ClampPage 将页码收敛到 [0, pageAmount-1] 区间。
// 越界的页码会被修正而不是拒绝。下界优先，pageAmount为0时返回0。
func ClampPage(page int, pageAmount int) int {
	if page >= pageAmount {
		page = pageAmount - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}
