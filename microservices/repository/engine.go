package repository

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"

	"goban/internal/bootstrap"
)

// EngineRepository общается с внешним go-движком по протоколу GTP:
// команды пишутся в stdin процесса, ответы читаются из stdout.
// Движок однопоточный, поэтому все команды сериализуются через mu.
type EngineRepository struct {
	cfg *bootstrap.Config
	log *zap.SugaredLogger

	mu     sync.Mutex
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
}

func NewEngineRepository(cfg *bootstrap.Config, log *zap.SugaredLogger) (*EngineRepository, error) {
	e := &EngineRepository{
		cfg: cfg,
		log: log,
	}
	if err := e.start(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *EngineRepository) start() error {
	var args []string
	if e.cfg.GtpEngineArgs != "" {
		args = strings.Fields(e.cfg.GtpEngineArgs)
	}
	cmd := exec.Command(e.cfg.GtpEnginePath, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("engine stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("engine stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("запуск движка %s: %w", e.cfg.GtpEnginePath, err)
	}

	e.cmd = cmd
	e.stdin = stdin
	e.stdout = bufio.NewReader(stdout)
	e.log.Infof("GTP-движок запущен: %s", e.cfg.GtpEnginePath)
	return nil
}

func (e *EngineRepository) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stdin != nil {
		fmt.Fprintln(e.stdin, "quit")
		e.stdin.Close()
	}
	if e.cmd != nil {
		return e.cmd.Wait()
	}
	return nil
}

// send выполняет одну GTP-команду. Ответ движка начинается с "=" при
// успехе или "?" при ошибке и завершается пустой строкой.
func (e *EngineRepository) send(command string) (string, error) {
	if _, err := fmt.Fprintf(e.stdin, "%s\n", command); err != nil {
		return "", fmt.Errorf("запись команды %q: %w", command, err)
	}

	var lines []string
	for {
		line, err := e.stdout.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("чтение ответа на %q: %w", command, err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if len(lines) > 0 {
				break
			}
			continue
		}
		lines = append(lines, line)
	}

	first := lines[0]
	switch {
	case strings.HasPrefix(first, "="):
		lines[0] = strings.TrimSpace(strings.TrimPrefix(first, "="))
	case strings.HasPrefix(first, "?"):
		return "", fmt.Errorf("движок отверг %q: %s", command, strings.TrimSpace(strings.TrimPrefix(first, "?")))
	default:
		return "", fmt.Errorf("неожиданный ответ движка на %q: %q", command, first)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// SetupPosition загружает позицию в движок: пустая доска, коми, ходы.
func (e *EngineRepository) setupPosition(boardSize int, komi float64, moves [][2]string) error {
	if _, err := e.send(fmt.Sprintf("boardsize %d", boardSize)); err != nil {
		return err
	}
	if _, err := e.send("clear_board"); err != nil {
		return err
	}
	if _, err := e.send(fmt.Sprintf("komi %.1f", komi)); err != nil {
		return err
	}
	for _, m := range moves {
		coord := m[1]
		if coord == "" {
			coord = "pass"
		}
		if _, err := e.send(fmt.Sprintf("play %s %s", m[0], coord)); err != nil {
			return err
		}
	}
	return nil
}

// DeadStones загружает позицию и спрашивает движок о мёртвых камнях.
func (e *EngineRepository) DeadStones(ctx context.Context, boardSize int, komi float64, moves [][2]string) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := e.setupPosition(boardSize, komi, moves); err != nil {
		return nil, err
	}
	out, err := e.send("final_status_list dead")
	if err != nil {
		return nil, err
	}

	return strings.Fields(out), nil
}

// GenerateMove загружает позицию и просит движок сыграть за color.
// Возвращает координату в GTP-нотации, "pass" или "resign".
func (e *EngineRepository) GenerateMove(ctx context.Context, boardSize int, komi float64, moves [][2]string, color string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := e.setupPosition(boardSize, komi, moves); err != nil {
		return "", err
	}
	out, err := e.send(fmt.Sprintf("genmove %s", color))
	if err != nil {
		return "", err
	}

	return out, nil
}
