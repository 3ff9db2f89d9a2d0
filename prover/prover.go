// Package prover generates zero-knowledge proofs that a Sudoku puzzle
// has a valid solution, without revealing the solution. Circuits are
// compiled per board dimension and cached; proofs use Groth16 over
// BN254.
package prover

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/pflow-xyz/go-sudoku/board"
)

// Prover compiles circuits and generates proofs.
type Prover struct {
	mu       sync.RWMutex
	circuits map[int]*CompiledCircuit
	curve    ecc.ID
}

// CompiledCircuit holds the compiled constraint system and keys for
// one board dimension.
type CompiledCircuit struct {
	Dim          int
	CS           constraint.ConstraintSystem
	ProvingKey   groth16.ProvingKey
	VerifyingKey groth16.VerifyingKey
	Constraints  int
}

// Proof is a generated proof together with its public inputs.
type Proof struct {
	Dim    int
	proof  groth16.Proof
	public witness.Witness
}

// New creates a prover instance.
func New() *Prover {
	return &Prover{
		circuits: make(map[int]*CompiledCircuit),
		curve:    ecc.BN254,
	}
}

// Compile compiles and sets up the circuit for the given dimension,
// reusing a cached result when available. Setup here is a local
// trusted setup; production use would substitute a ceremony.
func (p *Prover) Compile(dim int) (*CompiledCircuit, error) {
	p.mu.RLock()
	cc, ok := p.circuits[dim]
	p.mu.RUnlock()
	if ok {
		return cc, nil
	}

	circuit, err := NewCircuit(dim)
	if err != nil {
		return nil, err
	}

	cs, err := frontend.Compile(p.curve.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("circuit compilation failed: %w", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	cc = &CompiledCircuit{
		Dim:          dim,
		CS:           cs,
		ProvingKey:   pk,
		VerifyingKey: vk,
		Constraints:  cs.GetNbConstraints(),
	}

	p.mu.Lock()
	p.circuits[dim] = cc
	p.mu.Unlock()
	return cc, nil
}

// Prove generates a proof that solution is a valid completion of
// puzzle. Proving fails when the solution violates any constraint,
// including changing a given.
func (p *Prover) Prove(puzzle, solution *board.Board) (*Proof, error) {
	cc, err := p.Compile(puzzle.Dim())
	if err != nil {
		return nil, err
	}

	a, err := assignment(puzzle, solution)
	if err != nil {
		return nil, err
	}

	w, err := frontend.NewWitness(a, p.curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}

	proof, err := groth16.Prove(cc.CS, cc.ProvingKey, w)
	if err != nil {
		return nil, fmt.Errorf("proof generation failed: %w", err)
	}

	public, err := w.Public()
	if err != nil {
		return nil, fmt.Errorf("public witness extraction failed: %w", err)
	}

	return &Proof{Dim: puzzle.Dim(), proof: proof, public: public}, nil
}

// Verify checks a proof against the verifying key for its dimension.
func (p *Prover) Verify(proof *Proof) error {
	p.mu.RLock()
	cc, ok := p.circuits[proof.Dim]
	p.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no compiled circuit for dimension %d", proof.Dim)
	}
	return groth16.Verify(proof.proof, cc.VerifyingKey, proof.public)
}
