package player

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/alac"
	"github.com/llehouerou/go-faad2"
	"github.com/llehouerou/go-m4a"
)

// alacFrameSize is the default ALAC frames-per-packet.
const alacFrameSize = 4096

// m4aDecoder streams an MP4 container through an AAC or ALAC decoder.
type m4aDecoder struct {
	container *m4a.Reader
	closer    io.Closer
	codec     m4a.CodecType
	err       error

	sample     int // next container sample to read
	length     int // total frames
	sampleSize int
	channels   int

	aac  *faad2.Decoder
	alac *alac.Alac

	pending [][2]float64
	offset  int
}

// decodeM4A opens an MP4 container and picks the decoder for its codec.
func decodeM4A(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	container, err := m4a.Open(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}

	rate := container.SampleRate()
	precision := 2
	if container.Codec() == m4a.CodecALAC && container.SampleSize() == 24 {
		precision = 3
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   precision,
	}

	d := &m4aDecoder{
		container:  container,
		closer:     rc,
		codec:      container.Codec(),
		length:     int(container.Duration().Seconds() * float64(rate)),
		sampleSize: int(container.SampleSize()),
		channels:   int(container.Channels()),
	}

	ctx := context.Background()
	switch d.codec {
	case m4a.CodecAAC:
		dec, err := faad2.NewDecoder(ctx)
		if err != nil {
			return nil, beep.Format{}, err
		}
		if err := dec.Init(ctx, container.CodecConfig()); err != nil {
			dec.Close(ctx)
			return nil, beep.Format{}, err
		}
		d.aac = dec
	case m4a.CodecALAC:
		dec, err := alac.NewWithConfig(alac.Config{
			SampleRate:  int(rate),
			SampleSize:  d.sampleSize,
			NumChannels: d.channels,
			FrameSize:   alacFrameSize,
		})
		if err != nil {
			return nil, beep.Format{}, err
		}
		d.alac = dec
	case m4a.CodecUnknown:
		return nil, beep.Format{}, errors.New("unsupported codec in MP4 container")
	}

	return d, format, nil
}

func (d *m4aDecoder) Stream(samples [][2]float64) (n int, ok bool) {
	if d.err != nil {
		return 0, false
	}

	for n < len(samples) {
		if d.offset < len(d.pending) {
			c := copy(samples[n:], d.pending[d.offset:])
			d.offset += c
			n += c
			continue
		}
		if d.sample >= d.container.SampleCount() {
			return n, n > 0
		}
		if err := d.decodeNext(); err != nil {
			d.err = err
			return n, n > 0
		}
	}
	return n, true
}

func (d *m4aDecoder) decodeNext() error {
	data, err := d.container.ReadSample(d.sample)
	if err != nil {
		return err
	}
	d.sample++

	switch d.codec {
	case m4a.CodecAAC:
		pcm, err := d.aac.Decode(context.Background(), data)
		if err != nil {
			return err
		}
		d.pending = int16Frames(pcm, d.channels)
	case m4a.CodecALAC:
		d.pending = pcmFrames(d.alac.Decode(data), d.sampleSize, d.channels)
	case m4a.CodecUnknown:
		return errors.New("unsupported codec")
	}
	d.offset = 0
	return nil
}

// int16Frames converts interleaved samples to stereo frames, duplicating mono.
func int16Frames(pcm []int16, channels int) [][2]float64 {
	if channels == 2 {
		frames := make([][2]float64, len(pcm)/2)
		for i := range frames {
			frames[i][0] = float64(pcm[i*2]) / 32768.0
			frames[i][1] = float64(pcm[i*2+1]) / 32768.0
		}
		return frames
	}
	frames := make([][2]float64, len(pcm))
	for i, s := range pcm {
		v := float64(s) / 32768.0
		frames[i] = [2]float64{v, v}
	}
	return frames
}

// pcmFrames converts little-endian 16 or 24-bit PCM bytes to stereo frames.
func pcmFrames(data []byte, bits, channels int) [][2]float64 {
	width := bits / 8
	if width != 3 {
		width = 2
	}
	frameBytes := width * channels
	if frameBytes == 0 {
		return nil
	}

	read := func(off int) float64 {
		if width == 3 {
			v := int32(data[off]) | int32(data[off+1])<<8 | int32(data[off+2])<<16
			if v&0x800000 != 0 {
				v |= ^0xFFFFFF
			}
			return float64(v) / 8388608.0
		}
		return float64(int16(data[off])|int16(data[off+1])<<8) / 32768.0
	}

	frames := make([][2]float64, len(data)/frameBytes)
	for i := range frames {
		off := i * frameBytes
		left := read(off)
		right := left
		if channels >= 2 {
			right = read(off + width)
		}
		frames[i] = [2]float64{left, right}
	}
	return frames
}

func (d *m4aDecoder) Err() error { return d.err }

func (d *m4aDecoder) Len() int { return d.length }

func (d *m4aDecoder) Position() int {
	return int(d.container.SampleTime(d.sample).Seconds() * float64(d.container.SampleRate()))
}

func (d *m4aDecoder) Seek(p int) error {
	p = min(max(p, 0), d.length)
	pos := time.Duration(float64(p) / float64(d.container.SampleRate()) * float64(time.Second))
	d.sample = d.container.SeekToTime(pos)
	d.pending = nil
	d.offset = 0
	d.err = nil
	return nil
}

func (d *m4aDecoder) Close() error {
	if d.aac != nil {
		d.aac.Close(context.Background())
	}
	return d.closer.Close()
}
