package routine

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Recover 从 panic 中恢复，应在 defer 中调用。
// 恢复后依次调用 cleanup 函数，panic 值作为参数传递。
func Recover(cleanups ...func(r interface{})) {
	if r := recover(); r != nil {
		for _, cleanup := range cleanups {
			cleanup(r)
		}
	}
}

// Recovered 是捕获到的 panic 载荷：panic 值加上捕获点的调用栈。
//
// future 包用它在 goroutine 之间传输 panic：Promise.SetPanic 存入
// *Recovered，消费者侧 Future.Get 会重新 panic 这个载荷，
// Future.GetPanic 则只读取不抛出。
type Recovered struct {
	Value   interface{}
	Callers []uintptr
}

// NewRecovered 在捕获点构造 Recovered。
// skip 为跳过的栈帧数，0 表示从 NewRecovered 的调用者开始记录。
func NewRecovered(skip int, value interface{}) *Recovered {
	var callers [32]uintptr
	n := runtime.Callers(skip+2, callers[:])
	return &Recovered{
		Value:   value,
		Callers: callers[:n],
	}
}

// AsError 将载荷转换为 error，便于通过错误链传播。
func (p *Recovered) AsError() error {
	if p == nil {
		return nil
	}
	return &RecoveredError{p}
}

// String 实现 fmt.Stringer，panic 输出时可读。
func (p *Recovered) String() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// RecoveredError 是 Recovered 的 error 包装，
// 实现 pkg/errors 的 StackTrace 接口以便 %+v 打印调用栈。
type RecoveredError struct {
	*Recovered
}

func (e *RecoveredError) Error() string {
	return fmt.Sprintf("panic: %v\nstacktrace:%+v", e.Value, e.StackTrace())
}

func (e *RecoveredError) StackTrace() errors.StackTrace {
	if e == nil {
		return nil
	}
	frames := make([]errors.Frame, len(e.Callers))
	for i, pc := range e.Callers {
		frames[i] = errors.Frame(pc)
	}
	return frames
}
