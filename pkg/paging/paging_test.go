package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageAmount(t *testing.T) {
	const pageSize = 20

	assert.Equal(t, 0, PageAmount(0, pageSize))
	assert.Equal(t, 1, PageAmount(1, pageSize))
	assert.Equal(t, 1, PageAmount(pageSize, pageSize))
	assert.Equal(t, 2, PageAmount(pageSize+1, pageSize))
}

func TestPageAmountAtLeastOne(t *testing.T) {
	const pageSize = 20

	// 没有记录也要保底一页
	assert.Equal(t, 1, PageAmountAtLeastOne(0, pageSize))
	assert.Equal(t, 1, PageAmountAtLeastOne(1, pageSize))
	assert.Equal(t, 1, PageAmountAtLeastOne(pageSize, pageSize))
	assert.Equal(t, 2, PageAmountAtLeastOne(pageSize+1, pageSize))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 0, ClampPage(-1, 5))
	assert.Equal(t, 0, ClampPage(-100, 5))
	assert.Equal(t, 4, ClampPage(5, 5))
	assert.Equal(t, 4, ClampPage(100, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	// 一页都没有时收敛到0，下界优先
	assert.Equal(t, 0, ClampPage(7, 0))
}
