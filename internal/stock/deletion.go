package stock

// DeleteGroup: exclui um grupo (marca, modelo) inteiro, que pode ser lastreado
// por itens reais ou por uma declaração de categoria vazia.
//
// Sem itens: ErrNoContainerBound (não há o que excluir, depósito nunca foi
// resolvido). Representante placeholder: exclui a declaração subjacente pelo id
// real. Caso contrário: exclusão em lote por (marca, modelo, depósito) no
// backend, removendo todos os itens reais do grupo em uma operação.
//
// Operação destrutiva e irreversível do ponto de vista do motor; não há
// soft-delete nem desfazer.
func DeleteGroup(b Backend, brand, model, containerID string, items []Item) error {
	if len(items) == 0 {
		return ErrNoContainerBound
	}

	first := items[0]
	if first.Placeholder {
		return b.DeleteDeclaration(first.DeclarationID)
	}

	return b.DeleteItemGroup(brand, model, containerID)
}
