package constant

// Slave-mode flags passed to every mplayer invocation.
var MPlayerFlags = []string{"-identify", "-slave", "-msgmodule", "-nomsgcolor"}

const (
	// MPlayer is the default playback binary.
	MPlayer = "mplayer"

	// SSH is the transport used for remote playback.
	SSH = "ssh"
)
