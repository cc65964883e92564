package engine

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

// Process 把外部引擎可执行文件包成一对 stdio 行通道。
// 进程崩溃、二进制读不到之类的故障都停在这一层，不进协议核心。
type Process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
}

// StartProcess 启动引擎进程并接好管道。
func StartProcess(path string) (*Process, error) {
	cmd := exec.Command(path)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "engine stdin pipe")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "engine stdout pipe")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "start engine %q", path)
	}
	return &Process{cmd: cmd, stdin: stdin, stdout: stdout}, nil
}

func (p *Process) Writer() io.Writer { return p.stdin }
func (p *Process) Reader() io.Reader { return p.stdout }

// Close 先礼后兵：发 quit、关 stdin，等进程退出。
func (p *Process) Close() error {
	fmt.Fprintln(p.stdin, "quit")
	_ = p.stdin.Close()
	return errors.Wrap(p.cmd.Wait(), "engine exit")
}
