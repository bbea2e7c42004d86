// Package routine 提供安全的 goroutine 执行和 panic 捕获工具。
//
// 主要功能：
//   - RunSafe/GoSafe: 自动捕获 panic 的同步/异步函数执行
//   - Recover: panic 恢复
//   - Recovered/RecoveredError: 携带调用栈的 panic 载荷
//
// Recovered 同时是 future 包的 panic 传输类型：生产者侧捕获的 panic
// 以 *Recovered 的形式写入 promise，消费者侧通过 Future.GetPanic 读取，
// 或由 Future.Get 重新抛出。
package routine
