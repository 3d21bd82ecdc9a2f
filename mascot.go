package colorcat

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Furball is the colorcat mascot, one element per row.  The final row is
// the attribution line and is never rewoven.
var Furball = []string{
	"            .';::::::::::::::::::::::::::::::::::::::::::::::::::;,..           ",
	"         .:dOKKKXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXKKOxc'         ",
	"       .ck0KXXNNNNNNXXNNNNNNNNNNNNNNNNNNNNNNNNNNNNNNNNNNNNXKNNNNNNNXXKOo'       ",
	"      'd0KXXNNNNNWKc,;;cd0NWWWWWWWWWWWWWWWWWWWWWWWWWWWXkl;;;;kWNNNNNNXXKk;      ",
	"     .d0KXXNNNNWWWo.:x,.'.:kNMMMMMMMMMMMMMMMMMMMMMMWOl..''od.;XWWNNNNXXXKk,     ",
	"     ;kKXXXNNWWWMWc ;x;'l' .;xXMMMMMMMMMMMMMMMMMMWO:. .c;.do ,KMMWWNNXXXK0l.    ",
	"     ;kKXXXNNWMMMWc :x;';l:;;.;kWWX0OkkxxxkO0KNW0c.,;;cc',do.'0MMMWNNXXKK0l.    ",
	"     ;kKXXXNNWMMMWl ,d;cl;;c:;,.,,.'........'.',..;:c:;cl;lc ;XMMMWNNXXXK0l.    ",
	"     ;kKXXXNNWMMMMk..l:';c'c;;c'c;.co;cc,c:lo.'l,::,c,;c';l,.lWMMMWNNXXXK0l.    ",
	"     ;kKXXXNNWMMMMNc ;d:.ccc;;c,x:'ldclc;clld,,x:::;ccl';dc.'0MMMMWNNXXXK0l.    ",
	"     ;kKXXXNNWMMMMM0,.locc'l,:c.;l';c.cl,c,:l'c:.;c'l;:llo'.xWMMMMWNNXXXK0l.    ",
	"     ;kKXXXNNWMMMMMWo.ccloc;.'::.:c;:.cc,c,;ccc.,c,.'colcl';XMMMMMWNNXXXKOl.    ",
	"     ;kKXXXNNWMMMMWk..:ccol,lo.:;::;:.cc,c,;cc:,c'cd,:dccc'.lNMMMMWNNXXXKOl.    ",
	"     ;kKXXXNNWMMMMK,.::,co;.;:...,,,;,c;.c:;;;,.. ,c.'ll,;c'.xMMMMWNNXXXKOl.    ",
	"     ;kKXXXNNWMMMMd.,' 'lo:''.   '..:ol. :dc'..   .,,;lo;..;.;XMMMWNNXXXKOl.    ",
	"     ;kKXXXNNWMMMWc.;c,ox; ;o.  .oo.:o,...ll.,c   .dx..dx;;c.'0MMMWNNXXXKOl.    ",
	"     ;kKXXXNNWMMMWl.::.cxdc;lc'.,oc..:c'';l'.,oc'.;lc;oxo',c.,KMMMWNNXXXKOl.    ",
	"     ;kKXXNNNWMMMMx.':,,;;coccc:c'.,:,cc,c;;:..:c:cllc;;,,:;.lWMMMWNNXXXK0l.    ",
	"     ;kKXXXNNWMMMMNl.,c,.;oxko:::c;';;cl;c:;,,::::cxxdc..c:.;KMMMMWNNXXXK0l.    ",
	"     ;kKXXXNNWMMMMMXl',:::c::::cld0O,.:olc..d0xlc::::cc::;':0MMMMMWNNXXXKOl.    ",
	"     ;kKXXXNNWMMMMMMWx..col:,:lclkWWO:....,xNM0ocl:,:cll..lNMMMMMMWNNXXXKOl.    ",
	"     ;kKXXXNNWMMMMMMM0,;xl;;;;;:okXMMNo. ;XMMW0dc;;;;,cxc'xMMMMMMMWNNXXXKOl.    ",
	"     ;kKXXXNNWMMMMMMWx..lc.;,'c:,,:colcclclol:;':l,';';o' cNMMMMMMWNNXXXKOl.    ",
	"     ;OKXXXNNWMMMMMM0'':okclccc;';;.:x0NNXkl.,:';:cclcxdc'.dWMMMMMWNNXXXKOl.    ",
	"     ;OKXXXNNWMMMMMK;.,,,ccccc,;'.:;'.,;,;..,c'.;,clccl;,,..kWMMMMWNNXXXK0l.    ",
	"     ;kKXXXNNWMMMMNc.''';:cod'.cl..cl;:c,:;:l'.:l..ldcc:,''.,0MMMMWNNXXXX0l.    ",
	"     ;kKXXXNNWMMMMk.'oc::;:l;':o::::l::c,::cc:c:lc',c:;::co;.lWMMMWNNXXXK0l.    ",
	"     ;kKXXXNNWMMMWc :ko:dk:.'c:;.:l;;;l;.cc,;cl.':c: 'xkccko.,KMMMWNNXXXKOl.    ",
	"     ;OKXXXNNWMMMWc :l.,kd'.clcxcl:.;c:;,;cc.,lcdocl'.ckc.cl.'0MMMWNNXXXKOl.    ",
	"     ;kKXXXNNWMMMMd';'.;;'''cc;d;c;.l,;ddc'l;'l;oc;l,'',;,.;'cNMMMWNNXXXK0l.    ",
	"     ;kKXXXNNWMMMMXl.'ko:;ccc:...:l.:c'',':c':l...,lcc:;lk:.;0MMMMWNNXXXK0l.    ",
	"     ;kKXXXNNWWMMMMNo.;,;ccdoo,;d:''.:l;'cc'.';oc,codlc:,:':KMMMMMWNNXXXK0l.    ",
	"     ,xKXXXNNWWWMMMMW0l..':oco,.';':dclc;clol',,..lllc,..:kNMMMMMWWNNXXXKOc.    ",
	"     .lOKXXNNNNWWWMMMMWKxc;..,...::...cc,c,..;c.. ''.,:o0WMMMMWWWNNNNXXKKx'     ",
	"      .lOKXXNNNNNNNNNNNNNNXOxl:;','....'......,',:cokKNNNNNNNNNNNNNNNXK0d'      ",
	"        ,dOKXXXXXNNNXXNNNNNNNNNNK0OkxdddddddxkOKXNNNNNNNNNNNNNNNNNXXK0x:.       ",
	"         .,cdk00KKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKKK000KKK0Oxl;.         ",
	"             ..'''''''''''''''''''''''''''''''''''''''''''''''''''.             ",
	"             Colorcat by Ben Gorlick (github: bgorlick) (c) 2024 | MIT     ",
}

// bodyGlyphs are the mascot characters WeaveFurball replaces with the
// user's own text.
const bodyGlyphs = "kK0XNWMcdlxoO"

// Meow prints art with a 32-color gradient that advances one color per
// visible character, skipping multiples of 32 (index 0 is unreadable on
// most terminals).  A nil art prints the stock Furball.
func Meow(w io.Writer, art []string, startColor int) {
	if art == nil {
		art = Furball
	}
	fmt.Fprintln(w)
	for _, row := range art {
		var b strings.Builder
		col := startColor
		for _, ch := range row {
			if ch == ' ' {
				b.WriteRune(' ')
				continue
			}
			for col%32 == 0 {
				col++
			}
			fmt.Fprintf(&b, "\x1b[38;5;%dm%c\x1b[0m", col%32, ch)
			col++
		}
		fmt.Fprintln(w, b.String())
	}
	fmt.Fprintln(w)
}

// WeaveFurball replaces the mascot's body glyphs with the alphanumeric
// characters of input, cycling through them, and appends a hint line.
// Input with no alphanumeric characters yields the stock Furball.
func WeaveFurball(input string) []string {
	var pool []rune
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		return Furball
	}
	out := make([]string, len(Furball), len(Furball)+1)
	next := 0
	for i, row := range Furball[:len(Furball)-1] {
		var b strings.Builder
		for _, ch := range row {
			if strings.ContainsRune(bodyGlyphs, ch) {
				b.WriteRune(pool[next%len(pool)])
				next++
			} else {
				b.WriteRune(ch)
			}
		}
		out[i] = b.String()
	}
	out[len(Furball)-1] = Furball[len(Furball)-1]
	return append(out, "      Look carefully at the furball you just created... meow it contains your code :)")
}
