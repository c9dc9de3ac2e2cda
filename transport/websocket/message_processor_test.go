package websocket

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clientFrame encodes a masked frame the way a browser sends it.
func clientFrame(opCode byte, fin bool, payload []byte) []byte {
	first := opCode
	if fin {
		first |= 0x80
	}

	buf := []byte{first}

	switch {
	case len(payload) < 126:
		buf = append(buf, 0x80|byte(len(payload)))
	default:
		buf = append(buf, 0x80|126)
		buf = binary.BigEndian.AppendUint16(buf, uint16(len(payload)))
	}

	mask := [4]byte{0x37, 0xfa, 0x21, 0x3d}
	buf = append(buf, mask[:]...)

	for i, b := range payload {
		buf = append(buf, b^mask[i%4])
	}

	return buf
}

func TestReadFrame(t *testing.T) {
	t.Run("Unmasks a short text frame", func(t *testing.T) {
		got, err := readFrame(bytes.NewReader(clientFrame(opText, true, []byte("Hello"))))

		require.NoError(t, err)
		assert.True(t, got.isFin)
		assert.Equal(t, opText, got.opCode)
		assert.Equal(t, []byte("Hello"), got.payload)
	})

	t.Run("Reads a 16 bit length", func(t *testing.T) {
		payload := bytes.Repeat([]byte("x"), 300)

		got, err := readFrame(bytes.NewReader(clientFrame(opText, true, payload)))

		require.NoError(t, err)
		assert.Equal(t, payload, got.payload)
	})

	t.Run("Rejects long control frames", func(t *testing.T) {
		_, err := readFrame(bytes.NewReader(clientFrame(opPing, true, bytes.Repeat([]byte("x"), 126))))

		require.ErrorIs(t, err, ErrProtocol)
	})

	t.Run("Rejects fragmented control frames", func(t *testing.T) {
		_, err := readFrame(bytes.NewReader(clientFrame(opPing, false, nil)))

		require.ErrorIs(t, err, ErrProtocol)
	})

	t.Run("Rejects oversized frames", func(t *testing.T) {
		header := []byte{0x80 | opText, 127}
		header = binary.BigEndian.AppendUint64(header, maxMessageSize+1)

		_, err := readFrame(bytes.NewReader(header))

		require.ErrorIs(t, err, ErrMessageTooLarge)
	})

	t.Run("Truncated frame", func(t *testing.T) {
		data := clientFrame(opText, true, []byte("Hello"))

		_, err := readFrame(bytes.NewReader(data[:len(data)-2]))

		require.Error(t, err)
	})
}

func TestWriteFrame(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		header []byte
	}{
		{name: "7 bit length", size: 5, header: []byte{0x81, 5}},
		{name: "16 bit length", size: 200, header: []byte{0x81, 126, 0, 200}},
		{name: "64 bit length", size: 70000, header: []byte{0x81, 127, 0, 0, 0, 0, 0, 1, 0x11, 0x70}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			payload := bytes.Repeat([]byte("a"), tt.size)

			err := writeFrame(bufio.NewWriter(&out), frame{isFin: true, opCode: opText, payload: payload})

			require.NoError(t, err)
			assert.Equal(t, tt.header, out.Bytes()[:len(tt.header)])
			assert.Equal(t, len(tt.header)+tt.size, out.Len())
		})
	}
}

func TestMessageReader(t *testing.T) {
	t.Run("Joins fragments around a ping", func(t *testing.T) {
		// Given: a text message split in two with a ping in between
		stream := bytes.Join([][]byte{
			clientFrame(opText, false, []byte(`{"action":`)),
			clientFrame(opPing, true, []byte("p")),
			clientFrame(opContinuation, true, []byte(`"connect"}`)),
		}, nil)
		reader := newMessageReader(bytes.NewReader(stream))

		// When: reading twice
		opCode, body, err := reader.next()
		require.NoError(t, err)
		assert.Equal(t, opPing, opCode)
		assert.Equal(t, []byte("p"), body)

		opCode, body, err = reader.next()

		// Then: the message comes out whole
		require.NoError(t, err)
		assert.Equal(t, opText, opCode)
		assert.JSONEq(t, `{"action":"connect"}`, string(body))
	})

	t.Run("Continuation without a message", func(t *testing.T) {
		reader := newMessageReader(bytes.NewReader(clientFrame(opContinuation, true, []byte("x"))))

		_, _, err := reader.next()

		require.ErrorIs(t, err, ErrProtocol)
	})

	t.Run("New message inside a fragmented one", func(t *testing.T) {
		stream := append(clientFrame(opText, false, []byte("a")), clientFrame(opText, true, []byte("b"))...)
		reader := newMessageReader(bytes.NewReader(stream))

		_, _, err := reader.next()

		require.ErrorIs(t, err, ErrProtocol)
	})
}

func TestClosePayload(t *testing.T) {
	assert.Equal(t, []byte{0x03, 0xe8}, closePayload(nil))
	assert.Equal(t, []byte{0x03, 0xe9}, closePayload([]byte{0x03, 0xe9, 'b', 'y', 'e'}))
}
