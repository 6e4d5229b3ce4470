package document

import "time"

// styleSmoothing is the exponential-smoothing factor (α) the adaptive
// duration estimator applies to each new "seconds per byte" sample.
const styleSmoothing = 0.25

// byteBudgetUnit and its clamp bounds: ActionsInAllowedTime reports a
// budget in units of 1000 bytes, clamped to [minByteUnits, maxByteUnits].
const (
	byteBudgetUnit = 1000
	minByteUnits   = 8
	maxByteUnits   = 65536
)

// EnsureStyledTo styles lazily up to pos: if a Lexer bridge is
// installed, it is asked to colourise from the styling watermark
// (snapped back to the start of its line) up to pos; otherwise every
// watcher is offered a NotifyStyleNeeded call, stopping at the first
// that advances the watermark. Guarded against reentrance via
// performingStyle (on the bridge call) and enteredStyling (on Document);
// either guard already being held makes this call a no-op.
func (d *Document) EnsureStyledTo(pos int64) {
	if d.enteredStyling > 0 || d.performingStyle {
		return
	}
	if pos > d.Length() {
		pos = d.Length()
	}
	if pos <= d.EndStyled() {
		return
	}

	d.enteredStyling++
	defer func() { d.enteredStyling-- }()

	start := d.EndStyled()
	startLine := d.LineFromPosition(start)
	start = d.LineStart(startLine)

	if d.lexer != nil {
		d.StyleToAdjustingLineDuration(start, pos)
		return
	}
	for _, e := range d.watchers {
		before := d.EndStyled()
		e.w.NotifyStyleNeeded(d, e.userData, pos)
		if d.EndStyled() > before {
			break
		}
	}
}

// StyleToAdjustingLineDuration invokes the Lexer bridge over
// [start, pos), times the call, and feeds the observed seconds-per-byte
// rate into the exponential-smoothing estimator.
func (d *Document) StyleToAdjustingLineDuration(start, pos int64) {
	if d.lexer == nil || pos <= start {
		return
	}
	d.performingStyle = true
	defer func() { d.performingStyle = false }()

	length := pos - start
	initialStyle := int(d.StyleAt(start - 1))

	began := time.Now()
	endStyled := d.lexer.Lex(start, length, initialStyle, d)
	elapsed := time.Since(began).Seconds()

	if endStyled < int(start) {
		endStyled = int(start)
	}
	d.buf.SetEndStyled(int64(endStyled))
	d.notifyModified(Notification{Flags: FlagChangeStyle, Position: start, Length: int64(endStyled) - start})

	if length > 0 {
		sample := elapsed / float64(length)
		if d.styleSecsPerByte == 0 {
			d.styleSecsPerByte = sample
		} else {
			d.styleSecsPerByte = styleSmoothing*sample + (1-styleSmoothing)*d.styleSecsPerByte
		}
	}
}

// ActionsInAllowedTime converts a time budget into a byte budget using
// the adaptive "seconds per byte" estimate, clamped to
// [minByteUnits, maxByteUnits] units of 1000 bytes.
func (d *Document) ActionsInAllowedTime(duration time.Duration) int64 {
	units := maxByteUnits
	if d.styleSecsPerByte > 0 {
		bytesAllowed := duration.Seconds() / d.styleSecsPerByte
		units = int(bytesAllowed / byteBudgetUnit)
	}
	if units < minByteUnits {
		units = minByteUnits
	}
	if units > maxByteUnits {
		units = maxByteUnits
	}
	return int64(units) * byteBudgetUnit
}

// Colourise requests folding over [start, pos) from the Lexer bridge,
// if one is installed, notifying watchers with ChangeFold.
func (d *Document) Colourise(start, pos int64) {
	if d.lexer == nil || d.enteredStyling > 0 {
		return
	}
	d.enteredStyling++
	defer func() { d.enteredStyling-- }()

	initialStyle := int(d.StyleAt(start - 1))
	d.lexer.Fold(start, pos-start, initialStyle, d)
	d.notifyModified(Notification{Flags: FlagChangeFold, Position: start, Length: pos - start})
}
