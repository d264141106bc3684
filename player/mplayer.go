package player

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/mpq-cli/mpq/constant"
	"github.com/mpq-cli/mpq/playlist"
	"github.com/samber/lo"
)

var (
	ErrUnsafeTarget = errors.New("unsafe media target")
	ErrNoRemoteHost = errors.New("remote playback requires a host")
)

// remoteQuitGrace bounds how long stopping a remote item waits for mplayer
// to quit. Killing the local ssh client alone leaves the remote player running.
const remoteQuitGrace = time.Second

// schemes mplayer can open directly.
var schemes = []string{"http", "https", "ftp", "file", "rtsp", "rtmp", "mms", "dvd", "vcd", "cdda", "tv"}

// MPlayer launches mplayer in slave mode, locally or on a remote host over ssh.
type MPlayer struct{}

func NewMPlayer() *MPlayer {
	return &MPlayer{}
}

// Launch starts the subprocess for item. Output is buffered by the pipes
// until the returned process is told to Listen.
func (m *MPlayer) Launch(item playlist.Item, opts Options) (Process, error) {
	name, args, err := Command(item, opts)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = sysProcAttr()

	proc, err := startProcess(cmd)
	if err != nil {
		return nil, err
	}
	if opts.Remote {
		proc.quitGrace = remoteQuitGrace
	}
	return proc, nil
}

// Command builds the argv that plays item under opts.
//
// Locally: mplayer <target> -identify -slave -msgmodule -nomsgcolor [args...]
// Remotely: ssh <host> 'DISPLAY=<display> mplayer <target> ...', where every
// word of the remote command is shell-quoted.
func Command(item playlist.Item, opts Options) (string, []string, error) {
	target, err := sanitizeMediaTarget(item.URI)
	if err != nil {
		return "", nil, err
	}

	argv := append([]string{opts.binary(), target}, constant.MPlayerFlags...)
	argv = append(argv, opts.Args...)

	if !opts.Remote {
		return argv[0], argv[1:], nil
	}

	host := strings.TrimSpace(opts.RemoteHost)
	if host == "" {
		return "", nil, ErrNoRemoteHost
	}
	if strings.HasPrefix(host, "-") {
		return "", nil, fmt.Errorf("%w: host %q looks like a flag", ErrUnsafeTarget, host)
	}

	remote := shellescape.QuoteCommand(argv)
	if opts.Display != "" {
		remote = "DISPLAY=" + shellescape.Quote(opts.Display) + " " + remote
	}

	return constant.SSH, []string{host, remote}, nil
}

// sanitizeMediaTarget rejects locators that could be parsed as flags or
// carry control characters, and schemes mplayer cannot open.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("%w: empty locator", ErrUnsafeTarget)
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("%w: control characters in %q", ErrUnsafeTarget, l)
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("%w: %q looks like a flag", ErrUnsafeTarget, l)
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnsafeTarget, err)
		}
		if !lo.Contains(schemes, strings.ToLower(u.Scheme)) {
			return "", fmt.Errorf("%w: unsupported scheme %s", ErrUnsafeTarget, u.Scheme)
		}
		return l, nil
	}

	return filepath.Clean(l), nil
}
