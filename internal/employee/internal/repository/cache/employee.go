package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/talent/internal/employee/internal/domain"
	"github.com/pkg/errors"
)

// 候选池允许一定程度的过期，匹配的是快照语义
const poolExpiration = 10 * time.Minute

var ErrPoolNotFound = errors.New("候选池缓存未命中")

type EmployeeCache interface {
	GetPool(ctx context.Context) ([]domain.Employee, error)
	SetPool(ctx context.Context, pool []domain.Employee) error
	DelPool(ctx context.Context) error
}

type employeeCache struct {
	ec ecache.Cache
}

func NewEmployeeCache(ec ecache.Cache) EmployeeCache {
	return &employeeCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "employee:",
		},
	}
}

func (c *employeeCache) GetPool(ctx context.Context) ([]domain.Employee, error) {
	val := c.ec.Get(ctx, c.poolKey())
	if val.KeyNotFound() {
		return nil, ErrPoolNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询候选池缓存出错")
	}
	var pool []domain.Employee
	err := json.Unmarshal([]byte(val.Val.(string)), &pool)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化候选池失败")
	}
	return pool, nil
}

func (c *employeeCache) SetPool(ctx context.Context, pool []domain.Employee) error {
	data, err := json.Marshal(pool)
	if err != nil {
		return errors.Wrap(err, "序列化候选池失败")
	}
	return c.ec.Set(ctx, c.poolKey(), string(data), poolExpiration)
}

func (c *employeeCache) DelPool(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, c.poolKey())
	return err
}

func (c *employeeCache) poolKey() string {
	return "pool"
}
