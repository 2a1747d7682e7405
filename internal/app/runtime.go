package app

import (
	"context"
	"fmt"
	"time"

	"github.com/cherho0/Fast-DDS/config"
	"github.com/cherho0/Fast-DDS/internal/core/discovery/participant"
	"github.com/cherho0/Fast-DDS/internal/core/discovery/pool"
	"github.com/cherho0/Fast-DDS/internal/core/transport"
	"github.com/cherho0/Fast-DDS/pkg/lib/cdr"
	"github.com/cherho0/Fast-DDS/pkg/types"
)

// Runtime 运行中的发现子系统
type Runtime struct {
	Config  *config.Config
	Pool    *pool.Pool
	Network *transport.NetworkFactory

	stop func(context.Context) error
}

// Stop 停止运行时，触发各模块 OnStop
func (r *Runtime) Stop(ctx context.Context) error {
	return r.stop(ctx)
}

// NewLocalParticipant 以随机 GUID 前缀创建本地参与者公告
func (r *Runtime) NewLocalParticipant(name string) *participant.ProxyData {
	guid := types.GUID{
		Prefix: types.NewGuidPrefix(types.VendorIDLocal),
		Entity: types.EntityIDParticipant,
	}
	return participant.NewLocal(r.Config, guid, name)
}

// Announce 将参与者公告编码为带封装头的参数列表
func (r *Runtime) Announce(pd *participant.ProxyData) ([]byte, error) {
	msg := cdr.NewMessage(cdr.DefaultMessageSize)
	if err := pd.WriteToCDRMessage(msg, true); err != nil {
		return nil, err
	}
	return msg.Bytes(), nil
}

// AnnounceEvery 按配置的 AnnouncementPeriod 周期性编码公告并交给 emit
//
// 立即发出第一次公告；count 大于 0 时发出 count 次后返回 nil，否则持续到 ctx 取消。
func (r *Runtime) AnnounceEvery(ctx context.Context, pd *participant.ProxyData, count int, emit func([]byte) error) error {
	period := r.Config.Discovery.AnnouncementPeriod.Duration()
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for sent := 0; count <= 0 || sent < count; sent++ {
		if sent > 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
		data, err := r.Announce(pd)
		if err != nil {
			return err
		}
		if err := emit(data); err != nil {
			return err
		}
		logger.Debug("发出参与者公告", "guid", pd.GUID(), "seq", sent+1, "period", period)
	}
	return nil
}

// HandleAnnouncement 解码收到的参与者公告并登记到对象池
//
// 首次发现的参与者完整复制公告内容；已知参与者只刷新可变字段。
// 返回的句柄由调用方负责释放。
func (r *Runtime) HandleAnnouncement(data []byte) (*pool.Handle, bool, error) {
	received := participant.New(r.Config.Allocation)
	if err := received.ReadFromCDRMessage(cdr.NewMessageFromBytes(data), true, r.Network); err != nil {
		return nil, false, err
	}

	guid := received.GUID()
	if guid.IsUnknown() {
		return nil, false, fmt.Errorf("%w: announcement without participant guid", participant.ErrDecode)
	}

	h, created, err := r.Pool.AcquireWith(guid.Prefix, func(pd *participant.ProxyData) {
		pd.Copy(received)
	})
	if err != nil {
		return nil, false, err
	}
	if !created {
		h.Data().Update(received)
	}
	return h, created, nil
}
