package envseal

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Rotate re-encrypts an envelope under a new master key. The
// intermediate plaintext exists only on this call's stack and is never
// returned or stored. Fails with whichever of decrypt or encrypt failed.
func (s *Sealer) Rotate(envelope, oldMasterKey, newMasterKey string) (string, error) {
	plaintext, err := s.Decrypt(envelope, oldMasterKey)
	if err != nil {
		return "", err
	}
	return s.Encrypt(plaintext, newMasterKey)
}

// RotateRecord re-encrypts an envelope under a new master key using the
// default Sealer.
func RotateRecord(envelope, oldMasterKey, newMasterKey string) (string, error) {
	return defaultSealer.Rotate(envelope, oldMasterKey, newMasterKey)
}

// RotateBatch rotates many envelopes with at most workers rotations in
// flight. Each rotation derives two PBKDF2 keys, so the work is
// CPU-bound and parallelizes across independent records. Results keep
// the input order. The first failure cancels the remaining work and is
// returned; no partial result is returned alongside an error.
func RotateBatch(ctx context.Context, envelopes []string, oldMasterKey, newMasterKey string, workers int) ([]string, error) {
	if workers <= 0 {
		workers = 1
	}

	rotated := make([]string, len(envelopes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, envelope := range envelopes {
		i, envelope := i, envelope
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := defaultSealer.Rotate(envelope, oldMasterKey, newMasterKey)
			if err != nil {
				return err
			}
			rotated[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rotated, nil
}
