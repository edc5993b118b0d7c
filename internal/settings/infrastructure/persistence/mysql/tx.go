package mysql

import (
	"context"

	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"
)

// getDB 上下文中携带事务时复用该事务，否则返回根连接
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db
}
