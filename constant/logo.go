package constant

// Logo is the banner printed above the root command help.
const Logo = `
 _ __ ___  _ __   __ _
| '_ ` + "`" + ` _ \| '_ \ / _` + "`" + ` |
| | | | | | |_) | (_| |
|_| |_| |_| .__/ \__, |
          |_|       |_|`
